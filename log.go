package polyroot

import "log/slog"

// Logger, if non-nil, receives advisory diagnostics: currently a single
// informational record when a cubic solver abandons Newton–Raphson and falls
// back to bisection. The diagnostics never influence the returned roots.
var Logger *slog.Logger
