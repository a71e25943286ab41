// Package prodscan extracts product data from rendered shop pages.
// It finds de-duplicated product identifiers ("articles") on listing pages
// and attribute name/value pairs on product detail pages, using cascades of
// increasingly generic markup heuristics.
//
// This package contains domain types, interfaces and pure text helpers
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, rod/).
package prodscan
