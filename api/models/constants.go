package models

// Alphabet feeds nanoid when generating competitor and judge ids.
var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ShortIDLength is the length of generated competitor/judge ids.
const ShortIDLength = 8
