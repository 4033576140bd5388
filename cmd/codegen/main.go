package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/morphparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const genericParamCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate arity-N computed helpers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen started")
	defer func() {
		log.Printf("Codegen finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)

	contents := templates.ComputedNGen(int(genericParamCount))
	if err := os.WriteFile("reactive/computedn.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
