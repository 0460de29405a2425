package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/imgdot/imgdot-go/pkg/client"
)

type podClientFunc func(ctx context.Context, settings Settings) (*client.Client, error)

func newRootCommand(newClient podClientFunc) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "imgdot",
		Short:         "Work with the storage and image proxy of an imgdot pod",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := bindSettings(v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	connect := func(cmd *cobra.Command) (*client.Client, error) {
		settings, err := loadSettings(v)
		if err != nil {
			return nil, err
		}

		return newClient(cmd.Context(), settings)
	}

	root.AddCommand(
		newSignCommand(connect),
		newGetCommand(connect),
		newPutCommand(connect),
		newRemoveCommand(connect),
		newExistsCommand(connect),
		newListCommand(connect),
	)

	return root
}

type connectFunc func(cmd *cobra.Command) (*client.Client, error)

func newSignCommand(connect connectFunc) *cobra.Command {
	var sizes []string

	cmd := &cobra.Command{
		Use:   "sign SOURCE_URL",
		Short: "Print signed image proxy urls for a source image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			podClient, err := connect(cmd)
			if err != nil {
				return err
			}

			urls, err := podClient.BuildURLs(args[0], sizes)
			if err != nil {
				return err
			}

			for _, size := range urls.Sizes() {
				signedURL, _ := urls.Get(size)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", size, signedURL)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&sizes, "size", "s", []string{"original"}, "size tokens such as 300x300 (fill) or 300z300 (fit)")
	return cmd
}

func newGetCommand(connect connectFunc) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Download a file from the pod bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			podClient, err := connect(cmd)
			if err != nil {
				return err
			}

			data, err := podClient.ReadFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			return os.WriteFile(output, data, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newPutCommand(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "put KEY FILE",
		Short: "Upload a file to the pod bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}

			podClient, err := connect(cmd)
			if err != nil {
				return err
			}

			result, err := podClient.WriteFile(cmd.Context(), args[0], data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", result.Key, result.Size, result.ETag)
			return nil
		},
	}
}

func newRemoveCommand(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rm KEY",
		Short: "Delete a file from the pod bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			podClient, err := connect(cmd)
			if err != nil {
				return err
			}

			return podClient.DeleteFile(cmd.Context(), args[0])
		},
	}
}

func newExistsCommand(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "exists KEY",
		Short: "Check whether a file exists in the pod bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			podClient, err := connect(cmd)
			if err != nil {
				return err
			}

			exists, err := podClient.FileExists(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		},
	}
}

func newListCommand(connect connectFunc) *cobra.Command {
	var (
		recursive bool
		pattern   string
	)

	cmd := &cobra.Command{
		Use:   "ls [PREFIX]",
		Short: "List files in the pod bucket",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			podClient, err := connect(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if pattern != "" {
				entries, err := podClient.ListMatchingFiles(cmd.Context(), prefix, pattern)
				if err != nil {
					return err
				}

				for _, entry := range entries {
					fmt.Fprintf(out, "%d\t%s\n", entry.Size, entry.Key)
				}
				return nil
			}

			it, err := podClient.ListFiles(cmd.Context(), prefix, recursive)
			if err != nil {
				return err
			}
			defer it.Close()

			for it.Next() {
				entry := it.Entry()
				if entry.IsPrefix {
					fmt.Fprintf(out, "PRE\t%s\n", entry.Key)
					continue
				}
				fmt.Fprintf(out, "%d\t%s\n", entry.Size, entry.Key)
			}

			return it.Err()
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "list all keys below the prefix")
	cmd.Flags().StringVarP(&pattern, "match", "m", "", "only keys matching this glob, implies --recursive")
	return cmd
}
