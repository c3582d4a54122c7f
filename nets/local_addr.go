package nets

import "net"

type IsLocalAddr func(addr string) (bool, error)

// IsLocalAddr treats loopback and private addresses as local. Hosts that do not resolve are not local.
func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if ip := net.ParseIP(host); ip != nil {
			return ip.IsLoopback() || ip.IsPrivate(), nil
		}
		ips, err := net.LookupIP(host)
		if err != nil {
			return false, nil
		}
		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true, nil
			}
		}
		return false, nil
	}
}
