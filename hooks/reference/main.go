// Reference hook: appends one line per received event to a log file next
// to the binary. Useful as a template and for exercising hook doctor.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	hookrpc "tomado/internal/modules/hook/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *hookrpc.Empty) (*hookrpc.Metadata, error) {
	return &hookrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
		Events: []string{
			"session_started", "session_completed", "session_aborted",
			"break_started", "break_ended",
		},
	}, nil
}

func (s *server) Notify(_ context.Context, in *hookrpc.NotifyRequest) (*hookrpc.NotifyResponse, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(filepath.Dir(exe), "reference-events.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	at := time.Unix(in.AtUnix, 0).Format(time.RFC3339)
	if _, err := fmt.Fprintf(f, "%s %s session=%s task=%s completed=%v long=%v\n",
		at, in.Kind, in.SessionID, in.TaskID, in.Completed, in.IsLong); err != nil {
		return nil, err
	}
	return &hookrpc.NotifyResponse{Acknowledged: true}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: hookrpc.HandshakeConfig,
		Plugins:         hookrpc.HookMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
