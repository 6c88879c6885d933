// Package client provides commands that call a running loot sheet server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-lootsheet/internal/auth"
	"github.com/KirkDiggler/rpg-lootsheet/internal/handlers/lootsheet/v1alpha1"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/world"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
	selection  []string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running loot sheet server",
	Long: `Client commands call the loot sheet gRPC service. Tokens are written
as scene:token, e.g. cave:g1. The bearer token comes from --token or LOOTSHEET_TOKEN.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("LOOTSHEET_TOKEN"), "bearer token")
	ClientCmd.PersistentFlags().StringSliceVar(&selection, "select", nil, "tokens the caller has selected")

	ClientCmd.AddCommand(convertCmd)
	ClientCmd.AddCommand(addLootCmd)
	ClientCmd.AddCommand(observeCmd)
	ClientCmd.AddCommand(permissionsCmd)
	ClientCmd.AddCommand(setPermissionCmd)
	ClientCmd.AddCommand(rulesCmd)
	ClientCmd.AddCommand(addRuleCmd)
	ClientCmd.AddCommand(populatorCmd)
	ClientCmd.AddCommand(populateCmd)
}

// parseRefs reads scene:token pairs
func parseRefs(values []string) ([]world.TokenRef, error) {
	if values == nil {
		return nil, nil
	}
	refs := make([]world.TokenRef, 0, len(values))
	for _, v := range values {
		scene, id, ok := strings.Cut(v, ":")
		if !ok || scene == "" || id == "" {
			return nil, fmt.Errorf("token %q must be scene:token", v)
		}
		refs = append(refs, world.TokenRef{SceneID: scene, ID: id})
	}
	return refs, nil
}

// call sends req with the caller selection and prints the reply
func call(method string, req map[string]any) error {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	refs, err := parseRefs(selection)
	if err != nil {
		return err
	}
	if req == nil {
		req = map[string]any{}
	}
	if refs != nil {
		req["selection"] = refs
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if token != "" {
		ctx = auth.OutgoingContext(ctx, token)
	}

	var reply map[string]any
	if err := v1alpha1.NewClient(conn).Call(ctx, method, req, &reply); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := json.MarshalIndent(reply, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
