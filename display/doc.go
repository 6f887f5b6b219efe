// SPDX-License-Identifier: MIT

// Package display renders alignment artefacts as plain text: the raw score
// matrix (with index and symbol headers) and a three-line alignment view.
//
// It only consumes engine output and never feeds back into alignment.
package display
