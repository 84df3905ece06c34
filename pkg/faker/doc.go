// Package faker is the generation kernel. A Faker owns one seeded
// random stream and everything that draws from it: placeholder
// rewrites, generative regex patterns, weighted and uniform selection,
// the expression built-ins, and the template providers. Two fakers
// built with the same seed produce byte-identical output for the same
// sequence of calls.
package faker
