package conf

import "time"

var (
	// DefaultMetadataDB represents the backend used for run metadata.
	DefaultMetadataDB = NewStringFlag("metadata_db", "Backend for experiment metadata: none, cassandra or influxdb", "none")

	// ResultsDBBackend represents the backend used for experiment results.
	ResultsDBBackend = NewStringFlag("results_db", "Backend for experiment results: sqlite or memory", "sqlite")
	// ResultsDBPath represents location of the SQLite results database file.
	ResultsDBPath = NewStringFlag("results_db_path", "Path of the SQLite results database file, relative to the experiment directory", "gauss.db")

	// CassandraAddress represents cassandra address flag.
	CassandraAddress = NewStringFlag("cassandra_addr", "Address of Cassandra DB endpoint", "127.0.0.1")
	// CassandraPort represents cassandra port flag.
	CassandraPort = NewIntFlag("cassandra_port", "Port of Cassandra DB endpoint", 9042)
	// CassandraUsername represents cassandra username flag.
	CassandraUsername = NewStringFlag("cassandra_username", "The user name which will be presented when connecting to the cluster", "")
	// CassandraPassword represents cassandra password flag.
	CassandraPassword = NewStringFlag("cassandra_password", "The password which will be presented when connecting to the cluster", "")
	// CassandraConnectionTimeout represents cassandra connection timeout flag.
	CassandraConnectionTimeout = NewDurationFlag("cassandra_connection_timeout", "Initial connection timeout to Cassandra", 5*time.Second)
	// CassandraTimeout represents cassandra query timeout flag.
	CassandraTimeout = NewDurationFlag("cassandra_timeout", "Query timeout for Cassandra", 10*time.Second)
	// CassandraKeyspaceName represents cassandra keyspace flag.
	CassandraKeyspaceName = NewStringFlag("cassandra_keyspace_name", "Keyspace used to store metadata", "gauss")
	// CassandraCreateKeyspace enables keyspace creation on connect.
	CassandraCreateKeyspace = NewBoolFlag("cassandra_create_keyspace", "Create keyspace on connect if it does not exist", true)
	// CassandraIgnorePeerAddr ignores peer addresses reported by the cluster.
	CassandraIgnorePeerAddr = NewBoolFlag("cassandra_ignore_peer_addr", "Ignore peer addresses reported by Cassandra", false)
	// CassandraInitialHostLookup enables initial host lookup on connect.
	CassandraInitialHostLookup = NewBoolFlag("cassandra_initial_host_lookup", "Lookup cluster hosts on connect", true)
	// CassandraSslEnabled enables SSL for Cassandra connection.
	CassandraSslEnabled = NewBoolFlag("cassandra_ssl", "Enable SSL for the Cassandra connection", false)
	// CassandraSslHostValidation enables host verification for SSL.
	CassandraSslHostValidation = NewBoolFlag("cassandra_ssl_host_validation", "Verify the Cassandra host when SSL is enabled", false)
	// CassandraSslCAPath represents path to CA certificate.
	CassandraSslCAPath = NewStringFlag("cassandra_ssl_ca_path", "Path to CA certificate used for the Cassandra connection", "")
	// CassandraSslCertPath represents path to client certificate.
	CassandraSslCertPath = NewStringFlag("cassandra_ssl_cert_path", "Path to client certificate used for the Cassandra connection", "")
	// CassandraSslKeyPath represents path to client key.
	CassandraSslKeyPath = NewStringFlag("cassandra_ssl_key_path", "Path to client key used for the Cassandra connection", "")

	// InfluxDBAddress represents influxdb address flag.
	InfluxDBAddress = NewStringFlag("influxdb_addr", "Address of InfluxDB endpoint", "127.0.0.1")
	// InfluxDBPort represents influxdb port flag.
	InfluxDBPort = NewIntFlag("influxdb_port", "Port of InfluxDB endpoint", 8086)
	// InfluxDBUsername represents influxdb username flag.
	InfluxDBUsername = NewStringFlag("influxdb_username", "The user name which will be presented when connecting to InfluxDB", "")
	// InfluxDBPassword represents influxdb password flag.
	InfluxDBPassword = NewStringFlag("influxdb_password", "The password which will be presented when connecting to InfluxDB", "")
	// InfluxDBName represents influxdb database name flag.
	InfluxDBName = NewStringFlag("influxdb_name", "Database used to store metadata", "gauss_metadata")
	// InfluxDBInsecureSkipVerify disables certificate verification.
	InfluxDBInsecureSkipVerify = NewBoolFlag("influxdb_insecure_skip_verify", "Skip certificate verification for InfluxDB", false)
	// InfluxDBCreateDatabase enables database creation on connect.
	InfluxDBCreateDatabase = NewBoolFlag("influxdb_create_database", "Create database on connect if it does not exist", true)
)
