// Package units is the exact minor-unit decimal engine: parsing human
// decimal strings, encoding to arbitrary-precision integers at a fixed
// precision, rescaling between precisions, basis-point and slippage math,
// and rational price conversion. Everything is pure big.Int arithmetic;
// there are no floats in any computation path and no shared mutable state.
package units
