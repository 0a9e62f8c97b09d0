// Package devfolio builds an in-memory developer portfolio (owner profile
// plus a list of showcased projects) and renders it to a single
// self-contained HTML document.
//
// The core functionalities include:
//   - Portfolio Construction: Validating an owner configuration (name,
//     title, bio, email, optional social links and theme) and assembling it
//     into a Portfolio record.
//   - Project Management: Appending projects to a portfolio while enforcing
//     required fields, absolute URLs, and unique project identifiers.
//   - HTML Generation: A pure transform from a Portfolio to a complete HTML
//     page, with every user-supplied string escaped before it reaches the
//     output.
//   - Definition Files: Encoding and decoding a whole portfolio to and from
//     a human-readable, version-controllable YAML definition.
//
// This package serves as the foundational logic for the `fol` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package devfolio
