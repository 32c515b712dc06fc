package record

import (
	"strconv"
)

// MetadataField is a display-ready metadata field: a label and one or more
// values.
type MetadataField struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// MetadataFields returns the record's descriptive fields in display order,
// skipping fields that are absent. This is the data behind metadata panels;
// rendering is left to consumers.
func (rec *Record) MetadataFields() []MetadataField {

	fields := []struct {
		label  string
		values []string
	}{
		{"Title", single(rec.Title)},
		{"Alternative Titles", rec.AlternativeTitles},
		{"Description", rec.Description},
		{"Creators", rec.Creators},
		{"Publishers", rec.Publishers},
		{"Provider", single(rec.Provider)},
		{"Resource Class", rec.ResourceClass},
		{"Resource Type", rec.ResourceType},
		{"Subjects", rec.Subjects},
		{"Themes", rec.Themes},
		{"Keywords", rec.Keywords},
		{"Temporal Coverage", rec.Temporal},
		{"Date Issued", single(rec.Issued)},
		{"Index Years", years(rec.IndexYears)},
		{"Spatial Coverage", rec.Spatial},
		{"Language", rec.Language},
		{"Display Notes", rec.DisplayNotes},
		{"Access Rights", single(rec.AccessRights)},
		{"License", rec.Licenses},
		{"Rights", rec.Rights},
		{"Rights Holder", rec.RightsHolders},
		{"Format", single(rec.Format)},
		{"File Size", single(rec.FileSize)},
		{"Date Modified", single(rec.Modified)},
	}

	result := make([]MetadataField, 0)

	for _, f := range fields {

		if len(f.values) == 0 {
			continue
		}

		result = append(result, MetadataField{
			Label:  f.label,
			Values: f.values,
		})
	}

	return result
}

func single(v string) []string {

	if v == "" {
		return nil
	}

	return []string{v}
}

func years(v []int) []string {

	if len(v) == 0 {
		return nil
	}

	str_years := make([]string, len(v))

	for i, y := range v {
		str_years[i] = strconv.Itoa(y)
	}

	return str_years
}
