// Package output delivers rendered poms and checks them after the fact.
//
//   - Writers (writer.go): output destinations via the [Writer] interface,
//     with [StdoutWriter] and an atomic [FileWriter].
//
//   - Validation (validator.go): reads a pom back with encoding/xml and
//     reports missing coordinates, duplicates and unknown scopes as
//     [ValidationFinding] values.
package output
