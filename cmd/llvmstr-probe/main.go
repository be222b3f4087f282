// llvmstr-probe exercises the full owned-string lifecycle against a real
// LLVM install: it round-trips a message through LLVMCreateMessage and prints
// the default target triple, disposing everything it creates. Build with the
// llvm tag; without it the binary only reports that LLVM is unavailable.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/go-llvm/llvmstr"
	"github.com/go-llvm/llvmstr/capi"
	"github.com/lomik/zapwriter"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var defaultLoggerConfig = zapwriter.Config{
	Logger:           "",
	File:             "stderr",
	Level:            "info",
	Encoding:         "console",
	EncodingTime:     "iso8601",
	EncodingDuration: "seconds",
}

func main() {
	configPath := flag.String("config", "", "path to yaml config (logger section only)")
	message := flag.String("message", "my module", "string to round-trip through LLVMCreateMessage")
	flag.Parse()

	if err := zapwriter.ApplyConfig([]zapwriter.Config{defaultLoggerConfig}); err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	logger := zapwriter.Logger("main")

	if *configPath != "" {
		viper.SetConfigFile(*configPath)
		if err := viper.ReadInConfig(); err != nil {
			logger.Fatal("failed to read config", zap.String("config", *configPath), zap.Error(err))
		}
		cfg := defaultLoggerConfig
		if n := viper.GetString("logger.file"); n != "" {
			cfg.File = n
		}
		if n := viper.GetString("logger.level"); n != "" {
			cfg.Level = n
		}
		if n := viper.GetString("logger.encoding"); n != "" {
			cfg.Encoding = n
		}
		if err := zapwriter.ApplyConfig([]zapwriter.Config{cfg}); err != nil {
			logger.Fatal("failed to apply logger config",
				zap.Any("configuration", cfg),
				zap.Error(err),
			)
		}
	}

	if !capi.Available() {
		logger.Fatal("built without the llvm build tag, nothing to probe")
	}

	llvmstr.TrackLeaks()

	triple := capi.DefaultTargetTriple()
	defer triple.Dispose()
	fmt.Printf("default target triple: %s\n", triple)

	msg := capi.CreateMessage(*message)
	defer msg.Dispose()
	fmt.Printf("round-tripped message: %s (%d bytes)\n", msg, msg.Len())
	fmt.Printf("static literal:        %s\n", llvmstr.Literal(*message))
}
