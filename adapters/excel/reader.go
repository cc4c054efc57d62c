package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	genadapter "savantfnc/adapters/genetics"
	"savantfnc/domain/genetics"
	"savantfnc/internal/errors"
)

// requiredColumns must all appear in the header row. Matching is
// case-insensitive and whitespace-trimmed.
var requiredColumns = []string{"chrom", "pos", "ref", "alt", "gene"}

// columnAliases maps alternate header spellings onto canonical names
var columnAliases = map[string]string{
	"chromosome": "chrom",
	"position":   "pos",
	"af":         "gnomad_af",
	"cadd_score": "cadd",
}

// ReadVariants loads a variant table from a CSV or XLSX file, one row
// per variant under a header row, and annotates each row against the
// candidate gene catalog.
func ReadVariants(path string) ([]genetics.AnnotatedVariant, error) {
	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSVRows(path)
	case ".xlsx":
		rows, err = readXLSXRows(path)
	default:
		return nil, errors.Newf(errors.CodeInvalidInput, "unsupported variant table format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.InvalidInput("variant table needs a header row and at least one data row")
	}
	return parseVariantRows(rows)
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open variant table")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read variant table")
	}
	return rows, nil
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open variant workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "read variant sheet")
	}
	return rows, nil
}

func parseVariantRows(rows [][]string) ([]genetics.AnnotatedVariant, error) {
	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(header))
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}
		columns[name] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, errors.Newf(errors.CodeInvalidInput, "variant table missing column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	variants := make([]genetics.AnnotatedVariant, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		line := i + 2

		pos, err := strconv.Atoi(cell(row, "pos"))
		if err != nil {
			return nil, errors.Newf(errors.CodeInvalidInput, "variant row %d: bad position %q", line, cell(row, "pos"))
		}
		af := 0.0
		if raw := cell(row, "gnomad_af"); raw != "" {
			af, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Newf(errors.CodeInvalidInput, "variant row %d: bad allele frequency %q", line, raw)
			}
		}
		cadd := float64(genadapter.CADDUnscored)
		if raw := cell(row, "cadd"); raw != "" {
			cadd, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Newf(errors.CodeInvalidInput, "variant row %d: bad CADD score %q", line, raw)
			}
		}

		variants = append(variants, genadapter.Annotate(genetics.AnnotatedVariant{
			Chrom:       cell(row, "chrom"),
			Pos:         pos,
			Ref:         cell(row, "ref"),
			Alt:         cell(row, "alt"),
			Gene:        cell(row, "gene"),
			Consequence: cell(row, "consequence"),
			Impact:      genetics.Impact(strings.ToLower(cell(row, "impact"))),
			GnomadAF:    af,
			CADDScore:   cadd,
		}))
	}
	return variants, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
