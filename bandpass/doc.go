// Package bandpass implements an isotropic frequency-domain band-pass
// filter for 1D, 2D, and 3D float32 grids. The smoothing facade uses it as
// the low-pass smoother L (lower cutoff zero); the general band-pass form
// is exposed for standalone use.
//
// Design:
//
//   - A filter is defined by its band edges klower ≤ kupper (wavenumbers
//     in cycles/sample, 0 = DC, 0.5 = Nyquist), a transition width kwidth,
//     and a ripple tolerance. The amplitude response is 1 inside the band
//     and rolls off to 0 across a raised-cosine taper of width kwidth
//     centered on each edge; in 2D/3D the response depends only on the
//     radial wavenumber, making the filter isotropic.
//   - Application is by Fourier multiplication: each dimension is extended
//     to twice its length — mirror-image for zero-slope extrapolation,
//     zero padding for zero-value — transformed with gonum's FFT,
//     multiplied by the real transfer function, inverse transformed, and
//     truncated back. Input and output grids may alias.
//   - Because the transition band is realized directly in the wavenumber
//     domain, the ripple tolerance bounds passband deviation but does not
//     select a window length; it is validated and retained for contract
//     fidelity.
//
// Caching:
//
//	Building the N-D transfer array costs one pass over the extended grid.
//	SetFilterCaching(true) keeps one array per extended shape; callers that
//	filter many differently shaped grids should leave caching off (the
//	smoothing facade does) to bound memory growth.
//
// Complexity: O(N log N) per application, N = number of extended samples.
package bandpass
