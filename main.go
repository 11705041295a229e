package main

import (
	"context"
	"os"
	"os/signal"
	"relaybot/internal/adapters/handler"
	"relaybot/internal/adapters/sender"
	"relaybot/internal/adapters/store"
	"relaybot/internal/adapters/transport"
	"relaybot/internal/core/commands"
	"relaybot/internal/core/service"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting relaybot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")
	viper.SetDefault("store.path", "local-store.json")
	viper.SetDefault("sync.floor_delay", "5s")
	viper.SetDefault("handler.timeout", "1m")
	viper.SetDefault("relay.max_message_length", 2000)

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	session, err := discordgo.New("Bot " + viper.GetString("discord.bot_token"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing discord session")
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	fileStore, err := store.NewFile(afero.NewOsFs(), viper.GetString("store.path"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed opening store file")
	}

	registry := service.NewRegistry(fileStore)
	client := transport.NewClient()
	syncer := service.NewGroupSyncer(registry, client)

	floorDelay, err := time.ParseDuration(viper.GetString("sync.floor_delay"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid floor delay for group sync in config")
	}

	scheduler := service.NewScheduler(ctx, syncer, registry, floorDelay, nil)

	discordSender := sender.NewDiscordSender(session, viper.GetInt("relay.max_message_length"))
	relay := service.NewRelay(registry, client, discordSender)

	commandRegistry := &commands.Registry{}
	commandRegistry.Register(commands.NewAddHandler(registry, discordSender, "$add"))
	commandRegistry.Register(commands.NewRemoveHandler(registry, discordSender, "$remove"))
	commandRegistry.Register(commands.NewListHandler(registry, discordSender, "$list"))
	commandRegistry.Register(commands.NewAddGroupHandler(registry, scheduler, discordSender, "$add-group"))
	commandRegistry.Register(commands.NewRemoveGroupHandler(registry, scheduler, discordSender, "$remove-group"))
	commandRegistry.Register(commands.NewListGroupsHandler(registry, discordSender, "$list-groups"))
	commandRegistry.Register(commands.NewPingHandler(discordSender, "$ping"))

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timeout for handler in config")
	}

	messageHandler := handler.NewMessage(commandRegistry, relay, discordSender, handlerTimeout)
	session.AddHandler(messageHandler.Handle)

	if err := session.Open(); err != nil {
		log.Fatal().Err(err).Msg("failed connecting to discord")
	}
	defer session.Close()

	if err := scheduler.StartAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed scheduling persisted groups")
	}

	log.Info().Msg("bot listening")
	<-ctx.Done()
	log.Info().Msg("shutting down")
}
