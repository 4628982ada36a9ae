package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltersIsZero(t *testing.T) {
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{SiteID: "146"}.IsZero())
	assert.False(t, Filters{ServiceType: "internet"}.IsZero())
}

func TestFiltersMap(t *testing.T) {
	m := Filters{}.Map()
	assert.NotNil(t, m)
	assert.Empty(t, m)

	m = Filters{SiteID: "146", Vendor: "Verizon", ServiceType: "internet"}.Map()
	assert.Equal(t, map[string]string{
		"site_id":      "146",
		"vendor":       "Verizon",
		"service_type": "internet",
	}, m)
}

func TestFiltersSuffix(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    string
	}{
		{"none", Filters{}, ""},
		{"site only", Filters{SiteID: "146"}, "_site146"},
		{"vendor only", Filters{Vendor: "Verizon"}, "_Verizon"},
		{"site and vendor", Filters{SiteID: "146", Vendor: "Verizon"}, "_site146_Verizon"},
		{"service type ignored", Filters{ServiceType: "internet"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.Suffix())
		})
	}
}
