package web

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Month is a month option in the registration date pickers
type Month struct {
	Name   string
	Number string
}

// City is a location option in the job and company forms
type City struct {
	City    string
	Country string
}

// Months lists the months offered by the date pickers
var Months = []Month{
	{"January", "01"}, {"February", "02"}, {"March", "03"}, {"April", "04"},
	{"May", "05"}, {"June", "06"}, {"July", "07"}, {"August", "08"},
	{"September", "09"}, {"October", "10"}, {"November", "11"}, {"December", "12"},
}

// Years returns the years offered by the date pickers, 1980 through 2023
func Years() []int {
	years := make([]int, 0, 2024-1980)
	for y := 1980; y < 2024; y++ {
		years = append(years, y)
	}
	return years
}

// LoadMajors reads the "Major" column of a fields-of-study CSV. Values are
// title-cased, blanks and duplicates dropped and the result sorted.
func LoadMajors(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMajors(f)
}

// ParseMajors is LoadMajors over an already opened CSV
func ParseMajors(r io.Reader) ([]string, error) {
	rows, col, err := readColumns(r, "Major")
	if err != nil {
		return nil, err
	}

	title := cases.Title(language.English)
	seen := make(map[string]bool)
	var majors []string
	for _, row := range rows {
		value := strings.TrimSpace(row[col[0]])
		if value == "" {
			continue
		}
		value = title.String(value)
		if seen[value] {
			continue
		}
		seen[value] = true
		majors = append(majors, value)
	}

	sort.Strings(majors)
	return majors, nil
}

// LoadCities reads the city and country columns of a world cities CSV,
// sorted by country and then city
func LoadCities(path string) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCities(f)
}

// ParseCities is LoadCities over an already opened CSV
func ParseCities(r io.Reader) ([]City, error) {
	rows, col, err := readColumns(r, "city", "country")
	if err != nil {
		return nil, err
	}

	cities := make([]City, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, City{City: row[col[0]], Country: row[col[1]]})
	}

	sort.SliceStable(cities, func(i, j int) bool {
		if cities[i].Country != cities[j].Country {
			return cities[i].Country < cities[j].Country
		}
		return cities[i].City < cities[j].City
	})
	return cities, nil
}

// readColumns returns the data rows and the index of each named column
func readColumns(r io.Reader, names ...string) ([][]string, []int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make([]int, len(names))
	for i, name := range names {
		index[i] = -1
		for j, h := range header {
			if strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == name {
				index[i] = j
				break
			}
		}
		if index[i] < 0 {
			return nil, nil, fmt.Errorf("CSV has no %q column", name)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	rows := records[:0]
	for _, rec := range records {
		ok := true
		for _, i := range index {
			if i >= len(rec) {
				ok = false
				break
			}
		}
		if ok {
			rows = append(rows, rec)
		}
	}
	return rows, index, nil
}
