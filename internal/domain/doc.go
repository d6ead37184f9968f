// Package domain contains the core entities of the CRM: users, clients,
// projects, comments and transactions. Entities are plain structs with
// store-assigned integer identifiers; relationships are expressed as
// explicit foreign-key fields, and joins happen at the data-access boundary.
package domain
