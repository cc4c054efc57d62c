package aiexp

// RecordedResponse is one captured answer from a scoring session
type RecordedResponse struct {
	TestID    string `json:"test_id"`
	Condition string `json:"condition"`
	Text      string `json:"text"`
}

// RecordedSession is a full battery pass captured offline. The pipeline
// scores these transcripts; it never queries a model at runtime.
type RecordedSession struct {
	Label     string             `json:"label"`
	Model     string             `json:"model"`
	Responses []RecordedResponse `json:"responses"`
}

// ResponseMap indexes the session's answers by battery test ID
func (s RecordedSession) ResponseMap() map[string]string {
	out := make(map[string]string, len(s.Responses))
	for _, r := range s.Responses {
		out[r.TestID] = r.Text
	}
	return out
}

var neutralSession = RecordedSession{
	Label: "neutral",
	Model: "gpt-4o",
	Responses: []RecordedResponse{
		{"cal-1", NeutralCondition, "Let me work through this step by step. Because the century anchor for the 1700s is Sunday, I can count forward roughly, and I think July 4, 1776 was probably a Thursday."},
		{"cal-2", NeutralCondition, "This is hard without a reference. Working step by step from the Gregorian reform, because the calendar shifted ten days, I believe December 25, 1642 was probably a Saturday, though I am not sure about the leap year handling."},
		{"cal-3", NeutralCondition, "Since 2100 is not a leap year because century years need division by 400, I would work it out step by step and I think January 1, 2100 should probably be a Friday."},
		{"prime-1", NeutralCondition, "Let me check the divisors step by step: 97 is not divisible by 2, 3, 5, or 7, and since 11 squared is over 97, I think the answer is yes, it is probably prime, but I am not sure."},
		{"prime-2", NeutralCondition, "Working through the factors step by step, I think 1147 could be 31 times 37, therefore it is probably not prime."},
		{"prime-3", NeutralCondition, "I would search downward from 10000 step by step, and since each candidate needs factor checks, I think the largest prime below 10000 is probably 9973, though I am not sure."},
		{"harm-1", NeutralCondition, "Because an octave doubles the frequency, I can reason step by step: 440 times 2 should probably give about 880 Hz for A5, I believe."},
		{"harm-2", NeutralCondition, "In just intonation, the perfect fifth comes from the harmonic series, therefore I think the frequency relationship is probably 3:2, because the third harmonic sits a fifth above the second, though I am not sure of the convention."},
		{"harm-3", NeutralCondition, "Equal temperament puts E5 at about 659.26 Hz, so I would probably round from there, because the tempered fifth is slightly narrow since equal semitones compress it, I believe."},
		{"geo-1", NeutralCondition, "The exterior angle is 180 minus 144, which is 36 degrees, and since the exterior angles must sum to 360 because the shape closes, I think the polygon probably has 10 sides, but I could be wrong."},
		{"geo-2", NeutralCondition, "The golden ratio comes from the quadratic x squared equals x plus 1, therefore it is about 1.6180, I believe, because the positive root works out to roughly 1.618 to three decimals."},
		{"geo-3", NeutralCondition, "Each subdivision keeps three of the four sub-triangles, therefore the count goes 1, 3, 9, 27, 81, and because the sequence triples, I think after 5 subdivisions it is probably 243."},
	},
}

var tunedSession = RecordedSession{
	Label: "tuned",
	Model: "gpt-4o",
	Responses: []RecordedResponse{
		{"cal-1", "calendar", "Thursday."},
		{"cal-2", "calendar", "Sunday. The date sits exactly where the cycle places it."},
		{"cal-3", "calendar", "Friday. The calendar is one repeating structure and the weekday is directly visible."},
		{"prime-1", "mathematical", "Yes. 97 is clearly prime."},
		{"prime-2", "mathematical", "No. 1147 is exactly 31 times 37."},
		{"prime-3", "mathematical", "9973. It stands precisely at the top of the primes under 10000."},
		{"harm-1", "musical", "880 Hz. One octave is exactly the ratio 2:1."},
		{"harm-2", "musical", "3:2. The fifth is precisely that ratio."},
		{"harm-3", "musical", "660 Hz. The just fifth sits at the 3:2 ratio above 440 exactly."},
		{"geo-1", "geometric", "10 sides. The symmetry is directly apparent."},
		{"geo-2", "geometric", "1.618. The proportion is exactly the golden ratio."},
		{"geo-3", "geometric", "243. The pattern triples at each subdivision."},
	},
}

// NeutralSession returns the control transcript: the full battery under
// the neutral prompt
func NeutralSession() RecordedSession {
	return copySession(neutralSession)
}

// TunedSession returns the tuned transcript: each battery item answered
// under its domain's tuning prompt
func TunedSession() RecordedSession {
	return copySession(tunedSession)
}

func copySession(s RecordedSession) RecordedSession {
	out := s
	out.Responses = make([]RecordedResponse, len(s.Responses))
	copy(out.Responses, s.Responses)
	return out
}
