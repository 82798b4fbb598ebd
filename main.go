package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ramen-kiosk/config"
	"ramen-kiosk/database"
	"ramen-kiosk/database/model"
	"ramen-kiosk/logger"
	"ramen-kiosk/util/random"
	"ramen-kiosk/web"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func initLogger(cfg *config.Config) {
	switch cfg.LogLevel {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", cfg.LogLevel)
	}
}

func runWebServer() {
	cfg := config.Load()
	initLogger(cfg)

	if cfg.TokenSecret == "" {
		cfg.TokenSecret = random.Seq(32)
		logger.Warning("KIOSK_SECRET_KEY not set, generated a random token secret; tokens will not survive a restart")
	}

	db, err := database.InitDB(cfg.DBPath, cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer(cfg, db)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	if err := server.Stop(); err != nil {
		logger.Warning("stop server err:", err)
	}
	if err := database.CloseDB(db); err != nil {
		logger.Warning("close database err:", err)
	}
}

func promoteUser(username string) {
	cfg := config.Load()
	initLogger(cfg)

	db, err := database.InitDB(cfg.DBPath, cfg.Debug)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB(db)

	result := db.Model(&model.User{}).
		Where("username = ?", username).
		Update("is_admin", true)
	if result.Error != nil {
		fmt.Println("promote user failed:", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		fmt.Println("no such user:", username)
		return
	}
	fmt.Println("user", username, "is now an admin")
}

func showSetting() {
	cfg := config.Load()
	fmt.Println("current kiosk settings as follows:")
	fmt.Println("listen:", cfg.Listen)
	fmt.Println("port:", cfg.Port)
	fmt.Println("db path:", cfg.DBPath)
	fmt.Println("token ttl:", cfg.TokenTTL)
	fmt.Println("log level:", cfg.LogLevel)
}

func main() {
	var rootCmd = &cobra.Command{
		Use: "ramen-kiosk",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the kiosk web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Inspect and change settings",
	}

	var showCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Run: func(cmd *cobra.Command, args []string) {
			showSetting()
		},
	}

	var promoteCmd = &cobra.Command{
		Use:   "promote",
		Short: "Grant admin rights to an existing user",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			if username == "" {
				fmt.Println("--username is required")
				return
			}
			promoteUser(username)
		},
	}
	promoteCmd.Flags().String("username", "", "user to promote")

	settingCmd.AddCommand(showCmd, promoteCmd)
	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
