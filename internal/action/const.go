package action

import "time"

// rateLimitInterval bounds how often a missing-dispatch-handler warning can
// fire for the same (keyword, event) pair, mirroring the original's
// RATE_LIMIT macro (5 seconds) around default dispatch handlers.
const rateLimitInterval = 5 * time.Second
