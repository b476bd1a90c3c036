package config

import (
	"flag"
	"os"
	"time"

	"github.com/brandstack/cardlink/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      admin access token validity, minutes
//	-m string   bcrypt hash of the admin password
//	-k string   content source kind ("github" or "s3")
//	-o string   GitHub owner
//	-r string   GitHub repository
//	-f string   GitHub branch
//	-x string   GitHub bearer token (private repositories)
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The duration
// flag is accepted as an integer in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-m", "-k", "-o", "-r", "-f", "-x",
		"-u", "-p", "-b", "-g", "-e",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.AdminPasswordHash, "m", config.AdminPasswordHash, "bcrypt hash of the admin password")

	fs.StringVar(&config.ContentSource, "k", config.ContentSource, "content source kind (github or s3)")
	fs.StringVar(&config.GitHubOwner, "o", config.GitHubOwner, "GitHub owner")
	fs.StringVar(&config.GitHubRepo, "r", config.GitHubRepo, "GitHub repository")
	fs.StringVar(&config.GitHubBranch, "f", config.GitHubBranch, "GitHub branch")
	fs.StringVar(&config.GitHubToken, "x", config.GitHubToken, "GitHub bearer token")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
