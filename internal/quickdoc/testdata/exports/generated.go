// Code generated by hand for quickdoc tests. DO NOT EDIT.

package exports

// Generated is declared in a generated file.
var Generated = 1
