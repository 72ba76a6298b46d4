package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"quorumfs/pkg/config"
	"quorumfs/pkg/mrc"
	"quorumfs/pkg/osd"
	"quorumfs/pkg/protocol"
	"quorumfs/pkg/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const version = "0.3.0"

var (
	configFile string
	verbose    bool
	serverAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quorumfs",
		Short: "Replicated object-storage filesystem metadata tools",
		Long: `quorumfs runs the metadata server of a replicated object-storage
filesystem and administers replica location sets of its files.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", "localhost:8601", "MRC address")

	rootCmd.AddCommand(
		mrcCmd(),
		osdCmd(),
		createFileCmd(),
		addReplicasCmd(),
		xlocsetCmd(),
		statusCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func mrcCmd() *cobra.Command {
	var (
		address string
		secret  string
	)

	cmd := &cobra.Command{
		Use:   "mrc",
		Short: "Run the metadata server",
		Long:  `Start the MRC with its replica-set reconfiguration coordinator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(verbose)
			defer logger.Sync()

			var cfg *config.Config
			if configFile != "" {
				var err error
				cfg, err = config.LoadConfig(configFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
			} else {
				cfg = config.LoadFromEnv()
				if address != "" {
					cfg.MRC.Address = address
				}
				if secret != "" {
					cfg.MRC.CapabilitySecret = secret
				}
			}

			server := mrc.New(&cfg.MRC, logger)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Info("Shutting down")
				server.Stop()
			}()

			return server.Start()
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address")
	cmd.Flags().StringVar(&secret, "capability-secret", "", "shared secret for capability signing")
	return cmd
}

func osdCmd() *cobra.Command {
	var (
		uuid    string
		address string
	)

	cmd := &cobra.Command{
		Use:   "osd",
		Short: "Run a development OSD",
		Long:  `Start an in-memory OSD that answers the reconfiguration RPC surface.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger(verbose)
			defer logger.Sync()

			if uuid == "" {
				return fmt.Errorf("OSD UUID is required")
			}

			server := osd.NewServer(types.OSDID(uuid), address, logger, nil)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Info("Shutting down")
				server.Stop()
			}()

			return server.Start()
		},
	}

	cmd.Flags().StringVarP(&uuid, "uuid", "u", "", "OSD UUID")
	cmd.Flags().StringVarP(&address, "address", "a", ":7001", "listen address")
	return cmd
}

func createFileCmd() *cobra.Command {
	var (
		policy   string
		replicas []string
	)

	cmd := &cobra.Command{
		Use:   "create-file <file-id>",
		Short: "Register a file with its initial replica set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dialAdmin()
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &protocol.CreateFileRequest{
				FileId:              args[0],
				ReplicaUpdatePolicy: policy,
			}
			for _, osds := range replicas {
				req.Replicas = append(req.Replicas, &protocol.Replica{
					OsdUuids: strings.Split(osds, ","),
				})
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			resp, err := client.CreateFile(ctx, req)
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("create failed: %s", resp.Message)
			}
			fmt.Printf("File %s created\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&policy, "policy", "p", "WqRq", "replica update policy (WaR1, WaRa, WqRq, ronly)")
	cmd.Flags().StringArrayVarP(&replicas, "replica", "r", nil, "replica as comma-separated OSD UUIDs (head first); repeatable")
	return cmd
}

func addReplicasCmd() *cobra.Command {
	var replicas []string

	cmd := &cobra.Command{
		Use:   "add-replicas <file-id>",
		Short: "Extend a file's replica location set",
		Long: `Add replicas to a file. The coordinator invalidates the current
replicas, decides how many of the new ones must be primed and installs
the extended XLocSet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(replicas) == 0 {
				return fmt.Errorf("at least one --replica is required")
			}

			client, conn, err := dialAdmin()
			if err != nil {
				return err
			}
			defer conn.Close()

			req := &protocol.AddReplicasRequest{FileId: args[0]}
			for _, osds := range replicas {
				req.NewReplicas = append(req.NewReplicas, &protocol.Replica{
					OsdUuids: strings.Split(osds, ","),
				})
			}

			// The reconfiguration may include a lease wait; allow for it.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			resp, err := client.AddReplicas(ctx, req)
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("add replicas failed: %s", resp.Message)
			}
			fmt.Printf("XLocSet of %s now at version %d\n", args[0], resp.Version)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&replicas, "replica", "r", nil, "replica as comma-separated OSD UUIDs (head first); repeatable")
	return cmd
}

func xlocsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xlocset <file-id>",
		Short: "Show a file's replica location set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dialAdmin()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			resp, err := client.GetXLocSet(ctx, &protocol.GetXLocSetRequest{FileId: args[0]})
			if err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("%s", resp.Message)
			}

			set := resp.XlocSet
			fmt.Printf("File:    %s\n", args[0])
			fmt.Printf("Policy:  %s\n", set.ReplicaUpdatePolicy)
			fmt.Printf("Version: %d\n", set.Version)
			for i, r := range set.Replicas {
				fmt.Printf("Replica %d: %s\n", i, strings.Join(r.OsdUuids, ", "))
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("quorumfs %s\n", version)
		},
	}
}

func dialAdmin() (protocol.AdminServiceClient, *grpc.ClientConn, error) {
	conn, err := grpc.Dial(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MRC at %s: %w", serverAddr, err)
	}
	return protocol.NewAdminServiceClient(conn), conn, nil
}

func setupLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, _ := cfg.Build()
	return logger
}
