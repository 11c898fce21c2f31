// export_test.go exports private functions for white-box testing.
package watcher

var ConvertEvent = convertEvent
