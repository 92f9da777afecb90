// Package pricing models the equipment price table.
//
// A price entry is either a single model or a SET model: a bundle of physical
// components (indoor and outdoor unit, for example) sold under one catalog
// name and one price. Entries are scoped to an affiliate; the entry with an
// empty affiliate is the default price.
package pricing
