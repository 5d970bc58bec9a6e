package blog

// Schema DDL. Statements are idempotent so Open can run them on every start.
const (
	createMainTopics = `CREATE TABLE IF NOT EXISTS main_topics (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL
);`

	createBlogPosts = `CREATE TABLE IF NOT EXISTS blog_posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    main_topic_id INTEGER NOT NULL,
    FOREIGN KEY (main_topic_id) REFERENCES main_topics(id)
);`

	createStatusLog = `CREATE TABLE IF NOT EXISTS status_log (
    log_id TEXT PRIMARY KEY,
    post_id INTEGER NOT NULL,
    code INTEGER NOT NULL,
    message TEXT NOT NULL,
    kind TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createStatusLogIndex = `CREATE INDEX IF NOT EXISTS idx_status_log_post ON status_log(post_id);`
)

var schemaStatements = []string{
	createMainTopics,
	createBlogPosts,
	createStatusLog,
	createStatusLogIndex,
}
