// Package hankel computes Hankel-type integral transforms
//
//	T(q) = integral_0^inf g(x) J_nu(q x) dx
//
// with Ogata's quadrature over the zeros of J_nu, either untransformed or
// after the double-exponential change of variables psi(t) = t tanh(pi/2
// sinh t). The integrand g carries the radial measure itself: for the
// classical pair integral x f(x) J_nu(q x) dx pass g(x) = x f(x).
//
// An Engine is built once per (order, nodes, scale) triple. Construction
// tabulates MaxNodes zeros of J_nu, which dominates its cost; afterwards the
// engine is immutable and safe for concurrent use.
//
// The step size is tuned per call by maximizing |x g(x/q)| over
// [Scale/10, 10 Scale]. Integrands whose dominant contribution lies outside
// that bracket are under-resolved; choose Scale near the location of the
// peak of x g(x/q). The untransformed rule is only accurate for integrands
// of the form x^(2 nu + 1) times a smooth even function, while the
// double-exponential rule converges for general smooth decaying g.
package hankel
