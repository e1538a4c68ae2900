package sqlinline

const QEnqueueNotificationJob = `--sql b07f4a2d-8c19-4e65-92b3-5d60e1c7a48f
insert into notification_jobs(id, campaign_id, kind, exclude_email, payload, status, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::text, coalesce($4::jsonb, '{}'::jsonb), 'QUEUED', now(), now())
returning id;
`

const QClaimNotificationJob = `--sql 1c8d36e0-42fb-47a9-b5e8-09a7d2c41f63
update notification_jobs
set status = 'RUNNING', updated_at = now()
where id = (
  select id from notification_jobs
  where status = 'QUEUED'
  order by created_at asc
  for update skip locked
  limit 1
)
returning id, campaign_id, kind, exclude_email, payload;
`

const QCompleteNotificationJob = `--sql 6f23a9c5-7d01-4b84-8ef6-1b45c0d92a37
update notification_jobs
set status = $2::text, successful = $3::int, failed = $4::int, last_error = $5::text, updated_at = now()
where id = $1::uuid;
`
