// Package service contains the resource services of the CRM. Services own
// the cross-entity rules (existence checks, project/client linkage,
// server-assigned dates) and delegate persistence to the store interfaces.
package service
