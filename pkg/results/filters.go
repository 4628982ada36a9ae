package results

// Filters narrows a reconciliation run to a specific site, vendor, or service
// type. The zero value means no filtering.
type Filters struct {
	SiteID      string `json:"site_id,omitempty" yaml:"site_id,omitempty"`
	Vendor      string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	ServiceType string `json:"service_type,omitempty" yaml:"service_type,omitempty"`
}

// IsZero reports whether no filters were supplied.
func (f Filters) IsZero() bool {
	return f.SiteID == "" && f.Vendor == "" && f.ServiceType == ""
}

// Map returns the applied filters keyed by their document names, omitting
// empty values. Returns an empty (non-nil) map when no filters apply.
func (f Filters) Map() map[string]string {
	m := map[string]string{}
	if f.SiteID != "" {
		m["site_id"] = f.SiteID
	}
	if f.Vendor != "" {
		m["vendor"] = f.Vendor
	}
	if f.ServiceType != "" {
		m["service_type"] = f.ServiceType
	}
	return m
}

// Suffix returns the filename suffix encoding the applied filters:
// "_site{siteId}" then "_{vendor}", in that order, with no separator
// collapsing. Empty when no site or vendor filter applies.
func (f Filters) Suffix() string {
	suffix := ""
	if f.SiteID != "" {
		suffix += "_site" + f.SiteID
	}
	if f.Vendor != "" {
		suffix += "_" + f.Vendor
	}
	return suffix
}
