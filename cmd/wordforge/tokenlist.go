package main

import "strings"

// tokenlist is a flag.Value collecting seed tokens. Comma separated values
// are split; surrounding whitespace is left for the generator to trim.
type tokenlist []string

func (t *tokenlist) String() string {
	return strings.Join(*t, ", ")
}

// Set will be called for every occurrence of the -token flag
func (t *tokenlist) Set(value string) error {
	*t = append(*t, strings.Split(value, ",")...)
	return nil
}
