package parser

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ThiagoRGoveia/penguin-stats/internal/models"
	"github.com/ThiagoRGoveia/penguin-stats/pkg/checksum"
)

// ParseFloatCell converts a raw cell to a float. Empty or unparsable cells are absent.
func ParseFloatCell(raw string) models.Optional[float64] {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.None[float64]()
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.None[float64]()
	}
	return models.Some(value)
}

// ParseIntCell converts a raw cell to an integer. Decimals such as "190.0" are
// not integers and come back absent.
func ParseIntCell(raw string) models.Optional[int64] {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.None[int64]()
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return models.None[int64]()
	}
	return models.Some(value)
}

func parseRecord(header []string, row []string) models.Record {
	cells := make(map[string]string, len(header))
	for i, name := range header {
		// short rows leave trailing columns empty, extra cells are dropped
		if i < len(row) {
			cells[name] = row[i]
		} else {
			cells[name] = ""
		}
	}

	record := models.NewRecord(header, cells)
	record.Species = cells[models.FieldSpecies]
	record.Island = cells[models.FieldIsland]
	record.Sex = cells[models.FieldSex]
	record.Year = cells[models.FieldYear]
	record.BillLengthMM = ParseFloatCell(cells[models.FieldBillLengthMM])
	record.BillDepthMM = ParseFloatCell(cells[models.FieldBillDepthMM])
	record.FlipperLengthMM = ParseIntCell(cells[models.FieldFlipperLengthMM])
	record.BodyMassG = ParseIntCell(cells[models.FieldBodyMassG])
	record.CheckSum = checksum.RowChecksum(row)

	return record
}

// ReadRecords parses comma-delimited rows from r. The first row is the header.
func ReadRecords(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []models.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		records = append(records, parseRecord(header, row))
	}

	return records, nil
}

// LoadDataset reads every record from the file at filePath in a single pass,
// hashing the bytes as they are parsed.
func LoadDataset(filePath string) (*models.Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &models.LoadError{Path: filePath, Message: "failed to open file", Err: err}
	}
	defer file.Close()

	hashed := checksum.NewReader(file)
	records, err := ReadRecords(hashed)
	if err != nil {
		return nil, &models.LoadError{Path: filePath, Message: "failed to read records", Err: err}
	}

	return &models.Dataset{Path: filePath, CheckSum: hashed.Sum(), Records: records}, nil
}

func LoadRecords(filePath string) ([]models.Record, error) {
	dataset, err := LoadDataset(filePath)
	if err != nil {
		return nil, err
	}
	return dataset.Records, nil
}
