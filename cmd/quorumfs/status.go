package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"quorumfs/pkg/protocol"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show MRC status and file replica sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := dialAdmin()
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			resp, err := client.Status(ctx, &protocol.StatusRequest{})
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render("MRC Status"))
			fmt.Println(labelStyle.Render("Address:") + valueStyle.Render(resp.Address))
			fmt.Println(labelStyle.Render("Files:") + valueStyle.Render(strconv.Itoa(int(resp.FileCount))))

			if len(resp.Files) == 0 {
				return nil
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					return rowStyle
				}).
				Headers("FILE", "POLICY", "REPLICAS", "VERSION")

			for _, f := range resp.Files {
				t.Row(f.FileId, f.ReplicaUpdatePolicy,
					strconv.Itoa(int(f.ReplicaCount)), strconv.FormatUint(f.Version, 10))
			}
			fmt.Println(t.Render())
			return nil
		},
	}
}
