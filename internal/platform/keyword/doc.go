// Package keyword provides an implementation of the generation.Generator
// interface backed by a static, ordered list of keyword rules.
//
// A message is lower-cased and compared against each Rule in order; the first
// rule with a keyword starting any word of the message supplies the reply. When no
// rule matches, the Responder returns its fallback text, so Generate always
// yields a non-empty string.
package keyword
