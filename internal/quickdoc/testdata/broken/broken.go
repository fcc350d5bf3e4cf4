package broken

var Broken int = "not an int"
