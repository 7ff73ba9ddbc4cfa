package naming

// maxAcronymLen is the length of the longest entry in acronyms.
const maxAcronymLen = 5

// acronyms lists uppercase abbreviations kept as single words during
// segmentation.
var acronyms = map[string]struct{}{
	"AAA": {}, "AAC": {}, "ABI": {}, "ACK": {}, "ACL": {}, "ACME": {}, "ADC": {}, "ADT": {},
	"AES": {}, "AI": {}, "AJAX": {}, "ALB": {}, "ALPN": {}, "AMD": {}, "AMI": {}, "AMQP": {},
	"ANSI": {}, "API": {}, "APK": {}, "APNS": {}, "ARIA": {}, "ARM": {}, "ARN": {}, "ASAP": {},
	"ASCII": {}, "ASN": {}, "AST": {}, "ATM": {}, "AVX": {}, "AWS": {}, "AZ": {}, "BFF": {},
	"BGP": {}, "BIOS": {}, "BLE": {}, "BMP": {}, "BOM": {}, "BPF": {}, "BSD": {}, "BSON": {},
	"BTC": {}, "BTS": {}, "CA": {}, "CAD": {}, "CAS": {}, "CBC": {}, "CBOR": {}, "CDN": {},
	"CDP": {}, "CFG": {}, "CGI": {}, "CI": {}, "CIDR": {}, "CLI": {}, "CLR": {}, "CMS": {},
	"CNAME": {}, "CORS": {}, "CPU": {}, "CRC": {}, "CRDT": {}, "CRL": {}, "CRM": {}, "CRUD": {},
	"CSP": {}, "CSR": {}, "CSRF": {}, "CSS": {}, "CSV": {}, "CTA": {}, "CTR": {}, "CUDA": {},
	"CVE": {}, "CVV": {}, "DAG": {}, "DAO": {}, "DB": {}, "DBA": {}, "DDL": {}, "DDOS": {},
	"DER": {}, "DES": {}, "DHCP": {}, "DKIM": {}, "DLL": {}, "DLQ": {}, "DMA": {}, "DML": {},
	"DNS": {}, "DOM": {}, "DPI": {}, "DRM": {}, "DSA": {}, "DSL": {}, "DST": {}, "DTO": {},
	"DVD": {}, "EAN": {}, "EBS": {}, "EC": {}, "ECB": {}, "ECDSA": {}, "ECS": {}, "EDI": {},
	"EKS": {}, "ELB": {}, "EOF": {}, "EOL": {}, "EPS": {}, "ERP": {}, "ETA": {}, "ETAG": {},
	"ETL": {}, "EU": {}, "EUR": {}, "EVM": {}, "FAQ": {}, "FCM": {}, "FIFO": {}, "FK": {},
	"FPGA": {}, "FPS": {}, "FQDN": {}, "FS": {}, "FTP": {}, "FTPS": {}, "GB": {}, "GC": {},
	"GCM": {}, "GCP": {}, "GDPR": {}, "GID": {}, "GIF": {}, "GIS": {}, "GMT": {}, "GPG": {},
	"GPS": {}, "GPU": {}, "GQL": {}, "GRPC": {}, "GUI": {}, "GUID": {}, "GZIP": {}, "HA": {},
	"HAL": {}, "HDD": {}, "HDMI": {}, "HDR": {}, "HEX": {}, "HMAC": {}, "HOTP": {}, "HSM": {},
	"HSTS": {}, "HTML": {}, "HTTP": {}, "HTTPS": {}, "HVAC": {}, "IAM": {}, "IANA": {},
	"IBAN": {}, "ICMP": {}, "ICO": {}, "ID": {}, "IDE": {}, "IDP": {}, "IDS": {}, "IIFE": {},
	"IMAP": {}, "IO": {}, "IOS": {}, "IOT": {}, "IP": {}, "IPC": {}, "IPFS": {}, "IPV4": {},
	"IPV6": {}, "IR": {}, "IRC": {}, "ISBN": {}, "ISO": {}, "ISP": {}, "IT": {}, "IV": {},
	"JAR": {}, "JIT": {}, "JPEG": {}, "JPG": {}, "JRE": {}, "JS": {}, "JSON": {}, "JSONB": {},
	"JSX": {}, "JVM": {}, "JWE": {}, "JWK": {}, "JWS": {}, "JWT": {}, "KB": {}, "KMS": {},
	"KPI": {}, "KV": {}, "KYC": {}, "LAN": {}, "LB": {}, "LCD": {}, "LDAP": {}, "LED": {},
	"LFS": {}, "LHS": {}, "LIFO": {}, "LLM": {}, "LOB": {}, "LRU": {}, "LSP": {}, "LTE": {},
	"LTS": {}, "MAC": {}, "MB": {}, "MD": {}, "MDM": {}, "MFA": {}, "MIME": {}, "MITM": {},
	"ML": {}, "MMS": {}, "MQ": {}, "MQTT": {}, "MSB": {}, "MSRP": {}, "MTU": {}, "MVC": {},
	"MVP": {}, "MX": {}, "NAS": {}, "NAT": {}, "NFC": {}, "NFS": {}, "NFT": {}, "NLP": {},
	"NPM": {}, "NS": {}, "NTP": {}, "NULL": {}, "NVME": {}, "OAUTH": {}, "OCR": {}, "OCSP": {},
	"ODBC": {}, "OEM": {}, "OID": {}, "OIDC": {}, "OK": {}, "OLAP": {}, "OLTP": {}, "OOM": {},
	"ORM": {}, "OS": {}, "OSS": {}, "OTA": {}, "OTP": {}, "OU": {}, "PAN": {}, "PB": {}, "PC": {},
	"PCI": {}, "PDF": {}, "PEM": {}, "PGP": {}, "PHP": {}, "PID": {}, "PII": {}, "PIN": {},
	"PK": {}, "PKCS": {}, "PKI": {}, "PNG": {}, "POC": {}, "POP": {}, "POS": {}, "PPP": {},
	"PR": {}, "PSD": {}, "PTR": {}, "PWA": {}, "QA": {}, "QPS": {}, "QR": {}, "QUIC": {},
	"RAM": {}, "RBAC": {}, "RDBMS": {}, "RDS": {}, "REPL": {}, "REST": {}, "RFC": {}, "RGB": {},
	"RGBA": {}, "RHS": {}, "RNG": {}, "ROI": {}, "ROM": {}, "RPC": {}, "RPM": {}, "RSA": {},
	"RSS": {}, "RSVP": {}, "RTC": {}, "RTL": {}, "RTMP": {}, "RTP": {}, "RTT": {}, "SAML": {},
	"SAN": {}, "SAS": {}, "SASL": {}, "SCIM": {}, "SCP": {}, "SCSS": {}, "SDK": {}, "SEO": {},
	"SFTP": {}, "SHA": {}, "SKU": {}, "SLA": {}, "SLO": {}, "SMS": {}, "SMTP": {}, "SNI": {},
	"SNMP": {}, "SOA": {}, "SOAP": {}, "SPA": {}, "SQL": {}, "SQS": {}, "SRE": {}, "SRV": {},
	"SSD": {}, "SSH": {}, "SSL": {}, "SSN": {}, "SSO": {}, "STUN": {}, "SVG": {}, "SWIFT": {},
	"TB": {}, "TCP": {}, "TFA": {}, "TLD": {}, "TLS": {}, "TODO": {}, "TOML": {}, "TOTP": {},
	"TPM": {}, "TPS": {}, "TS": {}, "TSV": {}, "TTF": {}, "TTL": {}, "TTS": {}, "TX": {},
	"UDID": {}, "UDP": {}, "UI": {}, "UID": {}, "UML": {}, "URI": {}, "URL": {}, "URN": {},
	"USB": {}, "USD": {}, "UTC": {}, "UTF": {}, "UTF8": {}, "UUID": {}, "UX": {}, "VAT": {},
	"VCS": {}, "VIP": {}, "VM": {}, "VNC": {}, "VOIP": {}, "VPC": {}, "VPN": {}, "VR": {},
	"WAF": {}, "WAN": {}, "WASM": {}, "WAV": {}, "WIFI": {}, "WSDL": {}, "WWW": {}, "XHR": {},
	"XML": {}, "XMPP": {}, "XSD": {}, "XSLT": {}, "XSRF": {}, "XSS": {}, "YAML": {}, "ZIP": {},
}

// IsAcronym reports whether s is a known acronym. The match is exact and
// case-sensitive: "API" is an acronym, "Api" is not.
func IsAcronym(s string) bool {
	_, ok := acronyms[s]
	return ok
}
