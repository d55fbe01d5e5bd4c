// Package jobpost extracts structured job-posting fields (company, title,
// location, job type, salary, description, canonical URL) from raw HTML or
// plain text. When both an HTML-derived and a plain-text-derived view of the
// posting are available, the two extraction passes are reconciled per field
// and the result is normalized before being returned.
//
// This package contains domain types, interfaces, and the pure
// extraction/merge/validation core following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, gemini/).
package jobpost
