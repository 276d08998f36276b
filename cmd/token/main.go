// Command token issues an access token for local testing of the admin endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Temutjin2k/delivery-pricing/config"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/models"
	"github.com/Temutjin2k/delivery-pricing/internal/domain/types"
	"github.com/Temutjin2k/delivery-pricing/internal/service/auth"
	l "github.com/Temutjin2k/delivery-pricing/pkg/logger"
	wrap "github.com/Temutjin2k/delivery-pricing/pkg/logger/wrapper"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
	userID     = flag.String("user", "admin", "User id put in the token")
	role       = flag.String("role", string(types.RoleAdmin), "User role put in the token")
	ttl        = flag.Duration("ttl", time.Hour, "Token lifetime")
)

func main() {
	flag.Parse()

	lg := l.InitLogger("token", l.LevelInfo)
	ctx := wrap.WithAction(context.Background(), types.ActionIssueToken)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		lg.Error(ctx, "failed to configure application", err)
		os.Exit(1)
	}

	user := models.User{ID: *userID, Role: types.UserRole(*role)}
	token, err := auth.NewTokenService(cfg.Auth.JWTSecret).Issue(user, *ttl)
	if err != nil {
		lg.Error(wrap.ErrorCtx(ctx, err), "failed to issue token", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
