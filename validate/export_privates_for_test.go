package validate

// Test-only exports of unexported helpers.

var ParseDiagnostics = parseDiagnostics
