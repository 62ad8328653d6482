// Package taper provides data-taper sets for multitaper spectral estimation.
//
// A taper set holds K orthonormal tapers of a common sample length together
// with their spectral concentration ratios (eigenvalues in [0,1], ordered by
// descending concentration). Estimators consume tapers through the Source
// interface, which keeps them independent of how a basis is produced:
//
//   - SineSource generates the closed-form sine-taper basis of Riedel and
//     Sidorenko, a drop-in multitaper basis that needs no eigendecomposition.
//   - StaticSource wraps a precomputed set, e.g. discrete prolate spheroidal
//     sequences (DPSS) imported from an external numerical tool.
//
// The package does not compute DPSS tapers itself.
package taper
