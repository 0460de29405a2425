package signer

type Signer interface {
	BuildURL(sourceURL, size string) (string, error)
	BuildURLs(sourceURL string, sizes []string) (SignedURLs, error)
}
