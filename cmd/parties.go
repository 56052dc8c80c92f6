package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	sim "github.com/HiDomesticCat/sushi-sync/sim"
)

// partyColumns is the expected CSV layout for party records.
const partyColumns = "id,arrivalTime,partySize,babyChairs,wheelchairSpots,diningTime"

// LoadParties reads party records from a CSV file. A header row and blank
// lines are tolerated; malformed rows are skipped with a warning rather than
// failing the whole file.
func LoadParties(path string) ([]*sim.Party, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open party records: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read party records: %w", err)
	}

	var parties []*sim.Party
	for i, record := range records {
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(record[0]), "id") {
			continue // header row
		}
		party, err := parseParty(record)
		if err != nil {
			logrus.Warnf("skipping malformed party record on line %d: %v", i+1, err)
			continue
		}
		parties = append(parties, party)
	}
	return parties, nil
}

func parseParty(record []string) (*sim.Party, error) {
	if len(record) < 6 {
		return nil, fmt.Errorf("expected columns %s, got %d fields", partyColumns, len(record))
	}
	arrival, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("arrivalTime: %w", err)
	}
	size, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("partySize: %w", err)
	}
	baby, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("babyChairs: %w", err)
	}
	wheel, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("wheelchairSpots: %w", err)
	}
	dining, err := strconv.ParseInt(strings.TrimSpace(record[5]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("diningTime: %w", err)
	}
	return &sim.Party{
		ID:              strings.TrimSpace(record[0]),
		Arrival:         arrival,
		Size:            size,
		BabyChairs:      baby,
		WheelchairSpots: wheel,
		DiningTime:      dining,
	}, nil
}
