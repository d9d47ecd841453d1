/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

// IDL source files extension
const IDLFileExt = ".x"

// Lexer pattern of a variable array without bound, blanks inside allowed
const unboundedMarker = `<[ \t\r\n]*>`
