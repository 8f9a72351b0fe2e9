// Package services contains stateless domain services that implement business
// logic spanning more than one model. CartPricer turns a requested cart and a
// restaurant's current menu into priced, snapshotted order lines.
package services
