package other

// Answer is the answer.
var Answer = 42
