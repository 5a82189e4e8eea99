// Package catalog provides the product and category entities orders
// reference. For the order workflow both are read-only lookups; the entities
// still own their construction rules so the catalog can be maintained
// through the application's product and category commands.
package catalog
