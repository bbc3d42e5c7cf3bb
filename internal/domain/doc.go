// Package domain contains the core domain model for the library manager.
//
// The domain is persistence- and UI-agnostic: it does not depend on the
// filesystem, JSON codecs, or the terminal. Infra/adapters map into/from
// these types.
package domain
