package nets

import (
	"context"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/arithlex/configs"
	"github.com/reusee/arithlex/logs"
	"github.com/reusee/arithlex/modes"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

var _ configs.Configurable = ProxyAddr("")

func (ProxyAddr) ConfigKeys() []string {
	return []string{
		"proxy_addr",
		"http_proxy",
		"socks_proxy",
	}
}

var proxyEnvs = []string{
	"ALL_PROXY",
	"all_proxy",
	"HTTP_PROXY",
	"http_proxy",
	"SOCKS_PROXY",
	"socks_proxy",
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()

	if mode.IsTest() {
		return ""
	}

	if addr := configs.Lookup[ProxyAddr](loader); addr != "" {
		return addr
	}
	for _, env := range proxyEnvs {
		if addr := os.Getenv(env); addr != "" {
			return ProxyAddr(addr)
		}
	}
	return ""
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := &net.Dialer{}
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		if d, ok := proxyDialer.(Dialer); ok {
			return d, nil
		}
		return DialerFunc(func(_ context.Context, network, addr string) (net.Conn, error) {
			return proxyDialer.Dial(network, addr)
		}), nil
	})
}
