package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

var (
	mu         sync.Mutex
	out        io.Writer = os.Stdout
	defaultLoc           = time.Local
)

// SetLocation sets the zone used for "ts" when callers pass a nil location.
func SetLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()
	if loc != nil {
		defaultLoc = loc
	}
}

// SetOutput redirects application logs. Tests use it to capture entries.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// JSON writes a single structured log line. It stamps "ts" in loc and
// derives "level" from "status" when the caller did not set one.
func JSON(loc *time.Location, data map[string]any) {
	if loc == nil {
		mu.Lock()
		loc = defaultLoc
		mu.Unlock()
	}
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}

	mu.Lock()
	defer mu.Unlock()
	_, _ = out.Write(append(b, '\n'))
}

// Error logs err under msg with the given component.
func Error(loc *time.Location, component, msg string, err error, fields map[string]any) {
	entry := map[string]any{
		"component": component,
		"msg":       msg,
		"status":    "error",
		"error":     err.Error(),
	}
	for k, v := range fields {
		entry[k] = v
	}
	JSON(loc, entry)
}
