// export_test.go exports private functions for white-box testing.
package collector

var Resolve = resolve
