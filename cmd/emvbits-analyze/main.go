package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/d21d3q/emvbits/pkg/emvbits"
)

var (
	rootCmd = &cobra.Command{
		Use:   "emvbits-analyze [tag] [hex]",
		Short: "Decode EMV bit-string tag values",
		Long:  "emvbits-analyze names the bits set in EMV tag values such as TVR (95), TSI (9B) and CID (9F27).",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := emvbits.DecodeOptions{DictionaryPath: dictPath}
			ctx := cmd.Context()
			switch {
			case tlvMode && len(args) == 1:
				return runTLV(ctx, opts, args[0])
			case tlvMode:
				return fmt.Errorf("--tlv expects exactly one hex argument")
			case len(args) == 0:
				return runInteractive(ctx, opts)
			case len(args) == 2:
				return runDecode(ctx, opts, args[0], args[1])
			default:
				return fmt.Errorf("expected a tag and a hex value")
			}
		},
	}

	bitsCmd = &cobra.Command{
		Use:   "bits <hex>",
		Short: "List the bits set in a hex string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := emvbits.FromHex(strings.ToUpper(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}
			labels := emvbits.SetLabels(buf)
			if labels == "" {
				labels = "no bits set"
			}
			fmt.Println(labels)
			return nil
		},
	}

	dictPath string
	tlvMode  bool
	verbose  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "TOML dictionary layered over the built-in tags")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&tlvMode, "tlv", false, "treat the argument as a BER-TLV list and decode every known tag")
	rootCmd.AddCommand(bitsCmd)
	cobra.OnInitialize(func() {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(ctx context.Context, opts emvbits.DecodeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("emvbits analyze mode. Enter a tag and a hex value, e.g. \"95 8000008000\" (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tag, value, ok := strings.Cut(line, " ")
		if !ok {
			logrus.WithField("input", line).Error("expected a tag followed by a hex value")
			continue
		}
		if err := runDecode(ctx, opts, tag, value); err != nil {
			logrus.WithError(err).WithField("tag", tag).Error("failed to decode value")
		}
	}
	return scanner.Err()
}

func runDecode(ctx context.Context, opts emvbits.DecodeOptions, tag, hex string) error {
	result, err := emvbits.DecodeHexWithOptions(ctx, tag, hex, opts)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}

func runTLV(ctx context.Context, opts emvbits.DecodeOptions, hex string) error {
	results, err := emvbits.DecodeTLV(ctx, hex, opts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		logrus.Warn("no known tags found")
	}
	for _, r := range results {
		fmt.Println(r.String())
	}
	return nil
}
