// Package units implements unit-of-measure arithmetic.
//
// The package contains:
//   - Kind, the dimension vector (mass, time, length, temperature) that gates
//     conversion and addition
//   - the closed Unit model: LinearUnit and CustomUnit (named units) and
//     CompositeUnit (a product of named units with integer exponents)
//   - Quantity, a value tagged with a Unit and a point/interval flag, with
//     conversion and arithmetic
//   - Registry, the symbol table used to parse and format unit expressions
//
// Named units are singletons. The process-wide registry returned by Default is
// built once, sealed, and afterwards only read, so it is safe for concurrent
// use. All other values are immutable.
//
// Points and intervals matter for affine units such as degrees Celsius: 37 °C
// is a temperature (a point) while 5 °C may be a temperature change (an
// interval). The offset of an affine unit only applies to points.
package units
