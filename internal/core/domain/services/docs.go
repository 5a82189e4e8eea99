// Package services contains domain services that coordinate business rules
// across aggregates. Services hold no state of their own and depend only on
// narrow lookup interfaces, keeping them trivially testable.
package services
