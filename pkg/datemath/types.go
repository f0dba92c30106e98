package datemath

// DateTimeLayout is the wire layout for booking timestamps (no zone; the clock's zone applies).
const DateTimeLayout = "2006-01-02T15:04:05"
