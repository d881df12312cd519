// Command client is the SmartFinder command-line front end. It talks to a
// running SmartFinder server over its REST API.
//
// Usage:
//
//	client [flags] <command> [command flags]
//
// Session commands print the bearer token issued by the server; pass it back
// via -token on commands that require an open session.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/smartfinder/smartfinder/internal/adapter"
	"github.com/smartfinder/smartfinder/internal/config"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("smartfinder-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	if err = run(context.Background(), serverAdapter, flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	if len(args) == 0 {
		printUsage()
		return errors.New("no command given")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "login":
		return runLogin(ctx, server, rest)
	case "logoff":
		return runLogoff(ctx, server, rest)
	case "active-user":
		return runActiveUser(ctx, server, rest)
	case "register-user":
		return runRegisterUser(ctx, server, rest)
	case "get-user":
		return runByID(rest, func(id int64) (any, error) { return server.GetUser(ctx, id) })
	case "list-users":
		users, err := server.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(users)
	case "edit-user":
		return runEditUser(ctx, server, rest)
	case "remove-user":
		return runByID(rest, func(id int64) (any, error) { return server.RemoveUser(ctx, id) })
	case "user-devices":
		return runByID(rest, func(id int64) (any, error) { return server.ListUserDevices(ctx, id) })
	case "register-device":
		return runRegisterDevice(ctx, server, rest)
	case "get-device":
		return runByID(rest, func(id int64) (any, error) { return server.GetDevice(ctx, id) })
	case "list-devices":
		devices, err := server.ListDevices(ctx)
		if err != nil {
			return err
		}
		return printJSON(devices)
	case "edit-device":
		return runEditDevice(ctx, server, rest)
	case "remove-device":
		return runByID(rest, func(id int64) (any, error) { return server.RemoveDevice(ctx, id) })
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	login := fs.String("login", "", "account login")
	senha := fs.String("senha", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := server.Login(ctx, models.LoginRequest{Login: *login, Senha: *senha})
	if err != nil {
		return err
	}

	fmt.Printf("token: %s\n", server.Token())
	return printJSON(user)
}

func runLogoff(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("logoff", flag.ExitOnError)
	token := fs.String("token", "", "session token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	server.SetToken(*token)

	msg, err := server.Logoff(ctx)
	if err != nil {
		return err
	}

	fmt.Println(msg)
	return nil
}

func runActiveUser(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("active-user", flag.ExitOnError)
	token := fs.String("token", "", "session token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	server.SetToken(*token)

	user, err := server.ActiveUser(ctx)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func runRegisterUser(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("register-user", flag.ExitOnError)
	request := userRequestFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := server.RegisterUser(ctx, *request)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func runEditUser(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("edit-user", flag.ExitOnError)
	request := userRequestFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := server.EditUser(ctx, *request)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func runRegisterDevice(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("register-device", flag.ExitOnError)
	nome := fs.String("nome", "", "device name")
	token := fs.String("token", "", "session token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	server.SetToken(*token)

	device, err := server.RegisterDevice(ctx, models.DeviceRequest{Nome: *nome})
	if err != nil {
		return err
	}

	return printJSON(device)
}

func runEditDevice(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("edit-device", flag.ExitOnError)
	id := fs.Int64("id", 0, "device id")
	nome := fs.String("nome", "", "new device name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	device, err := server.EditDevice(ctx, models.DeviceEditRequest{ID: *id, Nome: *nome})
	if err != nil {
		return err
	}

	return printJSON(device)
}

func runByID(args []string, call func(id int64) (any, error)) error {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	id := fs.Int64("id", 0, "entity id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := call(*id)
	if err != nil {
		return err
	}

	return printJSON(result)
}

func userRequestFlags(fs *flag.FlagSet) *models.UserRequest {
	request := new(models.UserRequest)

	fs.StringVar(&request.Login, "login", "", "account login")
	fs.StringVar(&request.Senha, "senha", "", "account password")
	fs.StringVar(&request.Cpf, "cpf", "", "account CPF")
	fs.StringVar(&request.Email, "email", "", "account email")

	return request
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Commands:
  login           -login -senha
  logoff          -token
  active-user     -token
  register-user   -login -senha -cpf -email
  get-user        -id
  list-users
  edit-user       -login -senha -cpf -email
  remove-user     -id
  user-devices    -id
  register-device -nome -token
  get-device      -id
  list-devices
  edit-device     -id -nome
  remove-device   -id`)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
