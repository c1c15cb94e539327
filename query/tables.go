package query

// Declarative schemas for the replica tables of a wiki project
// database. Every table is a plain data entry: column names in table
// order with their semantic types. MediaWiki stores most timestamps as
// binary(14) strings, so they appear here as TypeString rather than as
// temporal types (categorylinks.cl_timestamp is the exception).

// ColumnDef describes one column of a replica table.
type ColumnDef struct {
	Name string
	Type SemanticType
}

// TableSchema describes one replica table.
type TableSchema struct {
	Name    string
	Columns []ColumnDef
}

// Col returns a reference to the named column, owned by this table.
// The name is not validated against the column list; a reference is
// just an identifier value.
func (t TableSchema) Col(name string) ColumnRef {
	return ColumnRef{Table: t.Name, Name: name}
}

// Table returns the schema of the named replica table.
func Table(name string) (TableSchema, bool) {
	columns, ok := tableColumns[name]
	if !ok {
		return TableSchema{}, false
	}
	return TableSchema{Name: name, Columns: columns}, true
}

// MustTable is Table for names known at compile time; it panics on an
// unknown name.
func MustTable(name string) TableSchema {
	schema, ok := Table(name)
	if !ok {
		panic("query: unknown table " + name)
	}
	return schema
}

var tableColumns = map[string][]ColumnDef{
	"actor": {
		{"actor_id", TypeInt64},
		{"actor_user", TypeInt64},
		{"actor_name", TypeString},
	},
	"archive": {
		{"ar_id", TypeInt64},
		{"ar_namespace", TypeInt64},
		{"ar_title", TypeString},
		{"ar_comment_id", TypeInt64},
		{"ar_actor", TypeDecimal},
		{"ar_timestamp", TypeString},
		{"ar_minor_edit", TypeInt64},
		{"ar_rev_id", TypeInt64},
		{"ar_deleted", TypeInt64},
		{"ar_len", TypeInt64},
		{"ar_page_id", TypeInt64},
		{"ar_parent_id", TypeInt64},
		{"ar_sha1", TypeString},
	},
	"block": {
		{"bl_id", TypeInt64},
		{"bl_target", TypeInt64},
		{"bl_by_actor", TypeInt64},
		{"bl_reason_id", TypeInt64},
		{"bl_timestamp", TypeString},
		{"bl_anon_only", TypeInt64},
		{"bl_create_account", TypeInt64},
		{"bl_enable_autoblock", TypeInt64},
		{"bl_expiry", TypeString},
		{"bl_deleted", TypeInt64},
		{"bl_block_email", TypeInt64},
		{"bl_allow_usertalk", TypeInt64},
		{"bl_parent_block_id", TypeInt64},
		{"bl_sitewide", TypeInt64},
	},
	"block_target": {
		{"bt_id", TypeInt64},
		{"bt_address", TypeString},
		{"bt_user", TypeInt64},
		{"bt_user_text", TypeString},
		{"bt_auto", TypeInt64},
		{"bt_range_start", TypeString},
		{"bt_range_end", TypeString},
		{"bt_ip_hex", TypeString},
		{"bt_count", TypeInt64},
	},
	"bot_passwords": {
		{"bp_user", TypeInt64},
		{"bp_app_id", TypeString},
		{"bp_password", TypeString},
		{"bp_token", TypeString},
		{"bp_restrictions", TypeString},
		{"bp_grants", TypeString},
	},
	"category": {
		{"cat_id", TypeInt64},
		{"cat_title", TypeString},
		{"cat_pages", TypeInt64},
		{"cat_subcats", TypeInt64},
		{"cat_files", TypeInt64},
	},
	"categorylinks": {
		{"cl_from", TypeInt64},
		{"cl_to", TypeString},
		{"cl_sortkey", TypeString},
		{"cl_sortkey_prefix", TypeString},
		{"cl_timestamp", TypeDatetime},
		{"cl_collation", TypeString},
		{"cl_type", TypeString},
	},
	"change_tag": {
		{"ct_id", TypeInt64},
		{"ct_rc_id", TypeInt64},
		{"ct_log_id", TypeInt64},
		{"ct_rev_id", TypeInt64},
		{"ct_params", TypeString},
		{"ct_tag_id", TypeInt64},
	},
	"change_tag_def": {
		{"ctd_id", TypeInt64},
		{"ctd_name", TypeString},
		{"ctd_user_defined", TypeInt64},
		{"ctd_count", TypeInt64},
	},
	"comment": {
		{"comment_id", TypeInt64},
		{"comment_hash", TypeInt64},
		{"comment_text", TypeString},
		{"comment_data", TypeString},
	},
	"content": {
		{"content_id", TypeInt64},
		{"content_size", TypeInt64},
		{"content_sha1", TypeString},
		{"content_model", TypeInt64},
		{"content_address", TypeString},
	},
	"content_models": {
		{"model_id", TypeInt64},
		{"model_name", TypeString},
	},
	"externallinks": {
		{"el_id", TypeInt64},
		{"el_from", TypeInt64},
		{"el_to_domain_index", TypeString},
		{"el_to_path", TypeString},
	},
	"filearchive": {
		{"fa_id", TypeInt64},
		{"fa_name", TypeString},
		{"fa_archive_name", TypeString},
		{"fa_storage_group", TypeString},
		{"fa_storage_key", TypeString},
		{"fa_deleted_user", TypeInt64},
		{"fa_deleted_timestamp", TypeString},
		{"fa_deleted_reason_id", TypeInt64},
		{"fa_size", TypeInt64},
		{"fa_width", TypeInt64},
		{"fa_height", TypeInt64},
		{"fa_metadata", TypeString},
		{"fa_bits", TypeInt64},
		{"fa_media_type", TypeString},
		{"fa_major_mime", TypeString},
		{"fa_minor_mime", TypeString},
		{"fa_description_id", TypeDecimal},
		{"fa_actor", TypeInt64},
		{"fa_timestamp", TypeString},
		{"fa_deleted", TypeInt64},
		{"fa_sha1", TypeString},
	},
	"image": {
		{"img_name", TypeString},
		{"img_size", TypeInt64},
		{"img_width", TypeInt64},
		{"img_height", TypeInt64},
		{"img_metadata", TypeString},
		{"img_bits", TypeInt64},
		{"img_media_type", TypeString},
		{"img_major_mime", TypeString},
		{"img_minor_mime", TypeString},
		{"img_description_id", TypeDecimal},
		{"img_actor", TypeInt64},
		{"img_timestamp", TypeString},
		{"img_sha1", TypeString},
	},
	"imagelinks": {
		{"il_from", TypeInt64},
		{"il_from_namespace", TypeInt64},
		{"il_to", TypeString},
	},
	"interwiki": {
		{"iw_prefix", TypeString},
		{"iw_url", TypeString},
		{"iw_api", TypeString},
		{"iw_wikiid", TypeString},
		{"iw_local", TypeInt64},
		{"iw_trans", TypeInt64},
	},
	"ip_changes": {
		{"ipc_rev_id", TypeInt64},
		{"ipc_rev_timestamp", TypeString},
		{"ipc_hex", TypeString},
	},
	"ipblocks": {
		{"ipb_id", TypeInt64},
		{"ipb_address", TypeString},
		{"ipb_user", TypeInt64},
		{"ipb_by_actor", TypeInt64},
		{"ipb_reason_id", TypeInt64},
		{"ipb_timestamp", TypeString},
		{"ipb_auto", TypeInt64},
		{"ipb_anon_only", TypeInt64},
		{"ipb_create_account", TypeInt64},
		{"ipb_enable_autoblock", TypeInt64},
		{"ipb_expiry", TypeString},
		{"ipb_range_start", TypeString},
		{"ipb_range_end", TypeString},
		{"ipb_deleted", TypeInt64},
		{"ipb_block_email", TypeInt64},
		{"ipb_allow_usertalk", TypeInt64},
		{"ipb_parent_block_id", TypeInt64},
		{"ipb_sitewide", TypeInt64},
	},
	"ipblocks_restrictions": {
		{"ir_ipb_id", TypeInt64},
		{"ir_type", TypeInt64},
		{"ir_value", TypeInt64},
	},
	"iwlinks": {
		{"iwl_from", TypeInt64},
		{"iwl_prefix", TypeString},
		{"iwl_title", TypeString},
	},
	"job": {
		{"job_id", TypeInt64},
		{"job_cmd", TypeString},
		{"job_namespace", TypeInt64},
		{"job_title", TypeString},
		{"job_timestamp", TypeString},
		{"job_params", TypeString},
		{"job_random", TypeInt64},
		{"job_attempts", TypeInt64},
		{"job_token", TypeString},
		{"job_token_timestamp", TypeString},
		{"job_sha1", TypeString},
	},
	"l10n_cache": {
		{"lc_lang", TypeString},
		{"lc_key", TypeString},
		{"lc_value", TypeString},
	},
	"langlinks": {
		{"ll_from", TypeInt64},
		{"ll_lang", TypeString},
		{"ll_title", TypeString},
	},
	"linktarget": {
		{"lt_id", TypeInt64},
		{"lt_namespace", TypeInt64},
		{"lt_title", TypeString},
	},
	"log_search": {
		{"ls_field", TypeString},
		{"ls_value", TypeString},
		{"ls_log_id", TypeInt64},
	},
	"logging": {
		{"log_id", TypeInt64},
		{"log_type", TypeString},
		{"log_action", TypeString},
		{"log_timestamp", TypeString},
		{"log_actor", TypeDecimal},
		{"log_namespace", TypeInt64},
		{"log_title", TypeString},
		{"log_page", TypeInt64},
		{"log_comment_id", TypeDecimal},
		{"log_params", TypeString},
		{"log_deleted", TypeInt64},
	},
	"module_deps": {
		{"md_module", TypeString},
		{"md_skin", TypeString},
		{"md_deps", TypeString},
	},
	"objectcache": {
		{"keyname", TypeString},
		{"value", TypeString},
		{"exptime", TypeString},
		{"modtoken", TypeString},
		{"flags", TypeInt64},
	},
	"oldimage": {
		{"oi_name", TypeString},
		{"oi_archive_name", TypeString},
		{"oi_size", TypeInt64},
		{"oi_width", TypeInt64},
		{"oi_height", TypeInt64},
		{"oi_bits", TypeInt64},
		{"oi_description_id", TypeDecimal},
		{"oi_actor", TypeInt64},
		{"oi_timestamp", TypeString},
		{"oi_metadata", TypeString},
		{"oi_media_type", TypeString},
		{"oi_major_mime", TypeString},
		{"oi_minor_mime", TypeString},
		{"oi_deleted", TypeInt64},
		{"oi_sha1", TypeString},
	},
	"page": {
		{"page_id", TypeInt64},
		{"page_namespace", TypeInt64},
		{"page_title", TypeString},
		{"page_is_redirect", TypeInt64},
		{"page_is_new", TypeInt64},
		{"page_random", TypeFloat64},
		{"page_touched", TypeString},
		{"page_links_updated", TypeString},
		{"page_latest", TypeInt64},
		{"page_len", TypeInt64},
		{"page_content_model", TypeString},
		{"page_lang", TypeString},
	},
	"page_props": {
		{"pp_page", TypeInt64},
		{"pp_propname", TypeString},
		{"pp_value", TypeString},
		{"pp_sortkey", TypeFloat64},
	},
	"page_restrictions": {
		{"pr_id", TypeInt64},
		{"pr_page", TypeInt64},
		{"pr_type", TypeString},
		{"pr_level", TypeString},
		{"pr_cascade", TypeInt64},
		{"pr_expiry", TypeString},
	},
	"pagelinks": {
		{"pl_from", TypeInt64},
		{"pl_from_namespace", TypeInt64},
		{"pl_target_id", TypeInt64},
	},
	"protected_titles": {
		{"pt_namespace", TypeInt64},
		{"pt_title", TypeString},
		{"pt_user", TypeInt64},
		{"pt_reason_id", TypeInt64},
		{"pt_timestamp", TypeString},
		{"pt_expiry", TypeString},
		{"pt_create_perm", TypeString},
	},
	"querycache": {
		{"qc_type", TypeString},
		{"qc_value", TypeInt64},
		{"qc_namespace", TypeInt64},
		{"qc_title", TypeString},
	},
	"querycache_info": {
		{"qci_type", TypeString},
		{"qci_timestamp", TypeString},
	},
	"querycachetwo": {
		{"qcc_type", TypeString},
		{"qcc_value", TypeInt64},
		{"qcc_namespace", TypeInt64},
		{"qcc_title", TypeString},
		{"qcc_namespacetwo", TypeInt64},
		{"qcc_titletwo", TypeString},
	},
	"recentchanges": {
		{"rc_id", TypeInt64},
		{"rc_timestamp", TypeString},
		{"rc_actor", TypeDecimal},
		{"rc_namespace", TypeInt64},
		{"rc_title", TypeString},
		{"rc_comment_id", TypeInt64},
		{"rc_minor", TypeInt64},
		{"rc_bot", TypeInt64},
		{"rc_new", TypeInt64},
		{"rc_cur_id", TypeInt64},
		{"rc_this_oldid", TypeInt64},
		{"rc_last_oldid", TypeInt64},
		{"rc_type", TypeInt64},
		{"rc_source", TypeString},
		{"rc_patrolled", TypeInt64},
		{"rc_ip", TypeString},
		{"rc_old_len", TypeInt64},
		{"rc_new_len", TypeInt64},
		{"rc_deleted", TypeInt64},
		{"rc_logid", TypeInt64},
		{"rc_log_type", TypeString},
		{"rc_log_action", TypeString},
		{"rc_params", TypeString},
	},
	"redirect": {
		{"rd_from", TypeInt64},
		{"rd_namespace", TypeInt64},
		{"rd_title", TypeString},
		{"rd_interwiki", TypeString},
		{"rd_fragment", TypeString},
	},
	"revision": {
		{"rev_id", TypeInt64},
		{"rev_page", TypeInt64},
		{"rev_comment_id", TypeInt64},
		{"rev_actor", TypeInt64},
		{"rev_timestamp", TypeString},
		{"rev_minor_edit", TypeInt64},
		{"rev_deleted", TypeInt64},
		{"rev_len", TypeInt64},
		{"rev_parent_id", TypeInt64},
		{"rev_sha1", TypeString},
	},
	"searchindex": {
		{"si_page", TypeInt64},
		{"si_title", TypeString},
		{"si_text", TypeString},
	},
	"site_identifiers": {
		{"si_type", TypeString},
		{"si_key", TypeString},
		{"si_site", TypeInt64},
	},
	"site_stats": {
		{"ss_row_id", TypeInt64},
		{"ss_total_edits", TypeInt64},
		{"ss_good_articles", TypeInt64},
		{"ss_total_pages", TypeInt64},
		{"ss_users", TypeInt64},
		{"ss_active_users", TypeInt64},
		{"ss_images", TypeInt64},
	},
	"sites": {
		{"site_id", TypeInt64},
		{"site_global_key", TypeString},
		{"site_type", TypeString},
		{"site_group", TypeString},
		{"site_source", TypeString},
		{"site_language", TypeString},
		{"site_protocol", TypeString},
		{"site_domain", TypeString},
		{"site_data", TypeString},
		{"site_forward", TypeInt64},
		{"site_config", TypeString},
	},
	"slot_roles": {
		{"role_id", TypeInt64},
		{"role_name", TypeString},
	},
	"slots": {
		{"slot_revision_id", TypeInt64},
		{"slot_role_id", TypeInt64},
		{"slot_content_id", TypeInt64},
		{"slot_origin", TypeInt64},
	},
	"templatelinks": {
		{"tl_from", TypeInt64},
		{"tl_from_namespace", TypeInt64},
		{"tl_target_id", TypeInt64},
	},
	"text": {
		{"old_id", TypeInt64},
		{"old_text", TypeString},
		{"old_flags", TypeString},
	},
	"updatelog": {
		{"ul_key", TypeString},
		{"ul_value", TypeString},
	},
	"uploadstash": {
		{"us_id", TypeInt64},
		{"us_user", TypeInt64},
		{"us_key", TypeString},
		{"us_orig_path", TypeString},
		{"us_path", TypeString},
		{"us_source_type", TypeString},
		{"us_timestamp", TypeString},
		{"us_status", TypeString},
		{"us_chunk_inx", TypeInt64},
		{"us_props", TypeString},
		{"us_size", TypeInt64},
		{"us_sha1", TypeString},
		{"us_mime", TypeString},
		{"us_media_type", TypeString},
		{"us_image_width", TypeInt64},
		{"us_image_height", TypeInt64},
		{"us_image_bits", TypeInt64},
	},
	"user": {
		{"user_id", TypeInt64},
		{"user_name", TypeString},
		{"user_real_name", TypeString},
		{"user_password", TypeString},
		{"user_newpassword", TypeString},
		{"user_newpass_time", TypeString},
		{"user_email", TypeString},
		{"user_touched", TypeString},
		{"user_token", TypeString},
		{"user_email_authenticated", TypeString},
		{"user_email_token", TypeString},
		{"user_email_token_expires", TypeString},
		{"user_registration", TypeString},
		{"user_editcount", TypeInt64},
		{"user_password_expires", TypeString},
		{"user_is_temp", TypeInt64},
	},
	"user_autocreate_serial": {
		{"uas_shard", TypeInt64},
		{"uas_year", TypeInt64},
		{"uas_value", TypeInt64},
	},
	"user_former_groups": {
		{"ufg_user", TypeInt64},
		{"ufg_group", TypeString},
	},
	"user_groups": {
		{"ug_user", TypeInt64},
		{"ug_group", TypeString},
		{"ug_expiry", TypeString},
	},
	"user_newtalk": {
		{"user_id", TypeInt64},
		{"user_ip", TypeString},
		{"user_last_timestamp", TypeString},
	},
	"user_properties": {
		{"up_user", TypeInt64},
		{"up_property", TypeString},
		{"up_value", TypeString},
	},
	"watchlist": {
		{"wl_id", TypeInt64},
		{"wl_user", TypeInt64},
		{"wl_namespace", TypeInt64},
		{"wl_title", TypeString},
		{"wl_notificationtimestamp", TypeString},
	},
	"watchlist_expiry": {
		{"we_item", TypeInt64},
		{"we_expiry", TypeString},
	},
	"wb_changes": {
		{"change_id", TypeInt64},
		{"change_type", TypeString},
		{"change_time", TypeString},
		{"change_object_id", TypeString},
		{"change_revision_id", TypeInt64},
		{"change_user_id", TypeInt64},
		{"change_info", TypeString},
	},
	"wb_changes_subscription": {
		{"cs_row_id", TypeInt64},
		{"cs_entity_id", TypeString},
		{"cs_subscriber_id", TypeString},
	},
	"wb_id_counters": {
		{"id_value", TypeInt64},
		{"id_type", TypeString},
	},
	"wb_items_per_site": {
		{"ips_row_id", TypeInt64},
		{"ips_item_id", TypeInt64},
		{"ips_site_id", TypeString},
		{"ips_site_page", TypeString},
	},
	"wb_property_info": {
		{"pi_property_id", TypeInt64},
		{"pi_type", TypeString},
		{"pi_info", TypeString},
	},
	"wbt_item_terms": {
		{"wbit_id", TypeInt64},
		{"wbit_item_id", TypeInt64},
		{"wbit_term_in_lang_id", TypeInt64},
	},
	"wbt_property_terms": {
		{"wbpt_id", TypeInt64},
		{"wbpt_property_id", TypeInt64},
		{"wbpt_term_in_lang_id", TypeInt64},
	},
	"wbt_term_in_lang": {
		{"wbtl_id", TypeInt64},
		{"wbtl_type_id", TypeInt64},
		{"wbtl_text_in_lang_id", TypeInt64},
	},
	"wbt_text_in_lang": {
		{"wbxl_id", TypeInt64},
		{"wbxl_language", TypeString},
		{"wbxl_text_id", TypeInt64},
	},
	"wbt_type": {
		{"wby_id", TypeInt64},
		{"wby_name", TypeString},
	},
	"wbt_text": {
		{"wbx_id", TypeInt64},
		{"wbx_text", TypeString},
	},
	"page_assessments": {
		{"pa_page_id", TypeInt64},
		{"pa_project_id", TypeInt64},
		{"pa_class", TypeString},
		{"pa_importance", TypeString},
		{"pa_page_revision", TypeInt64},
	},
	"page_assessments_projects": {
		{"pap_project_id", TypeInt64},
		{"pap_project_title", TypeString},
		{"pap_parent_id", TypeInt64},
	},
}
