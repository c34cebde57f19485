// Package timezones provides deterministic IANA timezone data plus helpers
// that turn it into choice lists for select fields. The backing data is the
// embedded list under data/iana_timezones.txt; GroupedChoices buckets zones
// into one optgroup per region, and Field builds a ready-to-render timezone
// select.
package timezones
