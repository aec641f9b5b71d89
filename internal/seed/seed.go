package seed

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/domain"
	"github.com/shifa-dev/clinic-desk/backend/internal/repository"
)

// ImportPatients loads the patient registry exported from the old
// paper-and-spreadsheet workflow into the database. The file may carry
// the columns full_name, phone, email, gender, birth_date, address and
// notes in any order; only full_name and phone are mandatory per row.
func ImportPatients(r *repository.Repository, path string) {
	file, err := os.Open(path)
	if err != nil {
		slog.Error("unable to open the import file", "error", err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)

	headers, err := reader.Read()
	if err != nil {
		slog.Error("unable to read the header row", "error", err)
		return
	}

	columns := make(map[string]int)
	for i, header := range headers {
		columns[strings.TrimSpace(strings.ToLower(header))] = i
	}

	for _, required := range []string{"full_name", "phone"} {
		if _, ok := columns[required]; !ok {
			slog.Error("missing required column", "column", required)
			return
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	imported := 0
	skipped := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Error("unable to read a record", "error", err)
			skipped++
			continue
		}

		patient := &domain.Patient{
			FullName: field(record, "full_name"),
			Phone:    field(record, "phone"),
			Email:    field(record, "email"),
			Address:  field(record, "address"),
			Notes:    field(record, "notes"),
		}

		if patient.FullName == "" || patient.Phone == "" {
			skipped++
			continue
		}

		switch field(record, "gender") {
		case "male", "m":
			patient.Gender = domain.GenderMale
		case "female", "f":
			patient.Gender = domain.GenderFemale
		default:
			skipped++
			continue
		}

		if birthDate := field(record, "birth_date"); birthDate != "" {
			parsed, err := time.Parse(time.DateOnly, birthDate)
			if err != nil {
				skipped++
				continue
			}
			patient.BirthDate = &parsed
		}

		if err := r.CreatePatient(patient); err != nil {
			slog.Error("unable to insert a patient", "error", err, "phone", patient.Phone)
			skipped++
			continue
		}
		imported++
	}

	slog.Info("patient import finished", "imported", imported, "skipped", skipped)
}
